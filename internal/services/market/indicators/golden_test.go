package indicators

// Reference directions of the pandas_ta supertrend algorithm (Wilder ATR from
// ewm(alpha=1/period, adjust=True), bands ratcheted only while a trend continues)
// on seeded random walks.
// directions holds one letter per bar after the ATR warmup: U up, D down.
var goldenSuperTrend = []struct {
	name       string
	period     int
	multiplier float64
	highs      []float64
	lows       []float64
	closes     []float64
	directions string
}{
	{
		name:       "btc random walk 10x3",
		period:     10,
		multiplier: 3.0,
		highs: []float64{
			64130.93, 64073.72, 64451.84, 64604.69, 64723.49, 64175.82, 63863.94, 63309.14, 63443.28, 64574.80,
			64621.94, 64193.55, 64208.35, 64663.13, 65115.46, 66103.64, 65789.64, 65889.44, 66152.39, 66173.34,
			66711.70, 66806.42, 67094.91, 67098.47, 67385.31, 65738.93, 65721.01, 66385.58, 66452.40, 67413.57,
			67327.22, 65879.86, 65055.35, 63874.40, 64064.67, 64038.14, 63748.36, 63296.25, 62743.46, 62890.90,
			62089.21, 62058.72, 62210.47, 62382.43, 62857.30, 63026.75, 63151.62, 63617.74, 63215.22, 62700.74,
			62900.46, 63131.94, 63008.10, 63103.74, 62782.70, 63866.09, 63592.53, 63493.40, 62312.07, 62719.80,
			63217.75, 64419.80, 66214.27, 65946.81, 66051.15, 66044.91, 65269.92, 65082.86, 64997.39, 65964.72,
			66427.32, 67339.74, 67693.63, 67889.96, 67913.84, 68587.65, 69605.72, 70048.08, 69652.69, 70083.47,
			70352.90, 71336.82, 71453.93, 70904.90, 70565.28, 71091.89, 71244.93, 71118.59, 70234.61, 69462.01,
			69903.27, 69831.98, 69343.82, 68830.06, 68516.20, 67005.23, 65743.29, 64252.82, 64267.89, 64724.15,
			65528.21, 65692.71, 65816.88, 66129.68, 66241.06, 66080.07, 65995.49, 66156.31, 65905.67, 66034.52,
			66403.37, 66577.41, 66834.53, 65611.45, 64979.91, 64117.59, 65644.25, 65818.33, 65880.92, 66408.16,
			65976.96, 65921.19, 66193.33, 66673.13, 66660.06, 66346.86, 66680.70, 67072.19, 67514.49, 67545.23,
			68002.30, 67718.94, 67756.56, 67617.08, 67378.54, 68134.65, 68054.87, 68643.62, 69177.78, 68359.60,
			68426.05, 68275.33, 68510.48, 68451.82, 68374.56, 69118.76, 69235.01, 69019.96, 67846.04, 68327.18,
			67839.98, 67812.44, 66385.21, 65587.47, 64323.67, 63882.53, 64979.66, 64952.72, 64352.95, 64617.54,
			63357.62, 63329.78, 62841.31, 62863.62, 60962.23, 60057.55, 59588.54, 59477.35, 59439.79, 59458.50,
			58592.94, 58097.01, 59399.47, 59660.54, 59454.05, 60404.21, 61019.11, 60912.55, 61660.77, 62769.34,
			63449.33, 63754.56, 64052.33, 63194.41, 64199.80, 64197.00, 64564.60, 65098.79, 66376.17, 67586.89,
			67598.06, 68721.58, 68791.38, 67335.71, 67301.71, 66947.99, 66336.32, 66509.33, 66921.09, 67141.04,
		},
		lows: []float64{
			63778.51, 63580.82, 63371.18, 64294.98, 63299.69, 62985.72, 63100.29, 62986.25, 62981.47, 63040.12,
			63943.54, 63899.96, 63544.78, 63615.04, 64442.33, 64646.47, 65375.34, 65248.09, 65087.64, 65560.57,
			66022.01, 65567.56, 65324.02, 66400.00, 65352.23, 64709.96, 64900.07, 65517.07, 65551.18, 66166.65,
			65609.60, 64375.44, 63650.67, 63530.16, 63527.18, 63501.12, 62579.76, 62634.98, 62223.75, 61618.56,
			61167.91, 61410.33, 61929.46, 62067.43, 61739.27, 62621.88, 62826.19, 62265.50, 62344.33, 62280.18,
			61984.37, 62744.41, 62164.34, 62251.81, 62288.39, 62414.09, 62942.02, 61165.85, 61478.79, 61895.01,
			62660.18, 63107.76, 63916.07, 65551.39, 65335.16, 64638.35, 63896.84, 63981.27, 64503.36, 64298.44,
			65212.18, 66220.04, 66910.45, 66495.38, 66694.28, 67831.10, 67926.24, 69036.38, 69260.57, 69114.14,
			69600.69, 69771.97, 69262.84, 69807.38, 70254.97, 70409.12, 70530.25, 69766.16, 68635.89, 68691.62,
			69025.36, 68974.24, 68087.07, 68326.81, 66640.08, 65441.77, 63978.42, 63568.59, 63419.10, 63649.00,
			64530.81, 64424.44, 64639.99, 65153.58, 65396.63, 65726.24, 65653.27, 65657.82, 64429.58, 64448.79,
			65422.89, 66137.44, 65180.58, 64338.15, 63823.87, 63649.32, 63709.75, 64238.53, 64268.74, 65471.61,
			65609.01, 65619.74, 65633.61, 65919.49, 66213.69, 66196.13, 66145.96, 66207.47, 66447.95, 67055.66,
			66288.44, 66200.60, 66966.17, 66909.91, 66759.23, 66912.93, 67675.71, 67509.89, 67995.89, 67479.79,
			67687.09, 67902.61, 67745.25, 68055.02, 68152.49, 68187.55, 68708.52, 67295.86, 67386.60, 66732.19,
			66820.65, 66123.10, 64947.87, 63692.23, 63554.22, 63383.78, 63386.55, 64074.41, 64173.10, 63272.99,
			63136.66, 62584.02, 62574.21, 60904.52, 59962.04, 59096.66, 59162.35, 58921.60, 58766.68, 58392.33,
			57800.84, 57818.92, 57720.17, 58759.40, 58806.96, 58647.24, 60203.30, 60432.14, 60633.38, 61406.11,
			62510.69, 63262.48, 62694.29, 63006.90, 62956.38, 63529.03, 63539.54, 64481.77, 64950.56, 65869.33,
			66678.43, 66822.05, 67002.81, 66926.21, 66922.40, 65884.95, 65727.96, 65859.79, 66255.55, 66326.47,
		},
		closes: []float64{
			63836.24, 63635.11, 64342.68, 64502.83, 63428.17, 63744.56, 63177.48, 63148.47, 63343.41, 64431.35,
			64031.66, 63963.52, 63677.38, 64454.83, 64729.74, 65575.27, 65505.67, 65464.87, 65903.05, 66141.78,
			66548.85, 65707.15, 66554.01, 66713.31, 65445.79, 64963.94, 65679.70, 65964.99, 66307.12, 67157.00,
			65831.40, 64639.05, 63791.51, 63695.73, 63772.42, 63507.93, 62948.77, 62668.76, 62575.37, 61932.76,
			61445.32, 61973.14, 62067.64, 62239.84, 62715.34, 62919.13, 62910.88, 63153.61, 62443.82, 62592.79,
			62769.38, 62992.29, 62850.18, 62544.16, 62502.44, 63434.38, 63218.10, 61522.07, 61942.36, 62682.36,
			63182.02, 64150.76, 65911.91, 65736.77, 65882.85, 64888.34, 64222.16, 64701.62, 64702.27, 65730.66,
			66380.10, 67313.82, 67582.80, 66893.36, 67864.81, 68556.06, 69532.45, 69263.23, 69482.82, 70061.35,
			70018.41, 71145.63, 69810.94, 70557.21, 70421.59, 70586.14, 70960.94, 70067.05, 68913.59, 69459.89,
			69575.18, 69130.63, 68506.82, 68426.48, 66811.55, 65513.97, 64052.98, 63759.24, 64184.03, 64607.54,
			65186.78, 64880.72, 65184.92, 65634.43, 66002.77, 65943.96, 65921.19, 65684.55, 65124.24, 65866.59,
			66275.94, 66559.44, 65265.39, 64807.18, 63898.32, 64015.55, 65372.98, 64493.71, 65668.12, 65839.29,
			65800.50, 65718.76, 66138.04, 66659.97, 66242.73, 66346.73, 66257.63, 66955.78, 67254.70, 67294.76,
			66565.22, 67615.68, 67099.53, 67218.11, 67204.01, 67856.77, 67756.05, 68480.27, 68334.84, 68187.63,
			67953.59, 67958.06, 68202.29, 68218.90, 68359.46, 68828.52, 68831.94, 67449.22, 67831.25, 66870.20,
			67601.39, 66371.37, 65112.04, 63964.74, 63562.26, 63720.93, 64678.44, 64351.54, 64299.22, 63278.84,
			63152.63, 62672.83, 62617.83, 60913.62, 59997.42, 59170.94, 59443.05, 58937.02, 59369.89, 58565.78,
			57914.60, 57975.66, 59323.19, 59395.36, 58949.02, 60326.38, 60788.75, 60693.88, 61410.90, 62713.29,
			63442.67, 63606.45, 63115.08, 63126.59, 64019.28, 63712.18, 64561.99, 65085.90, 66077.07, 67585.99,
			67148.47, 68348.19, 67319.41, 67010.04, 66928.85, 65966.42, 66274.89, 66380.65, 66890.27, 66420.24,
		},
		directions: "UUUUUUUUUUUUUUUUUUUUUUDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDUUUUUUUUUUUUUUUUUUUUUUUUDDDDDDDDDDDDDDDDDDDDDDDDDUUUUUUUUUUUUUUUUUUUUUUUU",
	},
	{
		name:       "eth random walk 7x2",
		period:     7,
		multiplier: 2.0,
		highs: []float64{
			3202.21, 3219.46, 3231.96, 3235.25, 3254.91, 3256.68, 3223.17, 3225.82, 3205.78, 3220.70,
			3248.45, 3240.72, 3246.36, 3231.72, 3212.37, 3221.44, 3222.31, 3212.09, 3222.98, 3234.37,
			3275.11, 3286.36, 3260.85, 3288.74, 3309.51, 3314.04, 3283.82, 3295.81, 3267.53, 3246.97,
			3289.87, 3290.01, 3285.22, 3305.76, 3287.81, 3313.27, 3311.88, 3232.12, 3275.37, 3311.92,
			3325.68, 3320.97, 3347.63, 3345.50, 3380.48, 3398.48, 3386.57, 3388.72, 3390.46, 3368.95,
			3401.26, 3423.29, 3431.72, 3433.46, 3455.34, 3427.37, 3426.85, 3443.37, 3418.32, 3444.40,
			3451.10, 3434.23, 3447.11, 3483.98, 3505.67, 3502.63, 3564.98, 3569.86, 3549.99, 3561.47,
			3556.35, 3580.91, 3543.87, 3525.51, 3513.51, 3494.42, 3545.67, 3544.12, 3535.38, 3544.54,
			3520.45, 3477.03, 3475.54, 3471.02, 3476.84, 3478.68, 3501.09, 3466.79, 3458.09, 3440.52,
			3396.04, 3390.08, 3360.67, 3397.12, 3403.21, 3386.25, 3387.90, 3366.82, 3377.00, 3384.50,
			3404.13, 3398.69, 3382.61, 3337.41, 3272.82, 3281.87, 3266.44, 3251.74, 3229.62, 3299.68,
			3310.51, 3318.99, 3319.85, 3305.54, 3325.56, 3393.55, 3393.45, 3367.48, 3378.64, 3388.28,
			3382.47, 3380.21, 3363.00, 3361.95, 3361.15, 3354.47, 3372.25, 3327.87, 3301.68, 3315.75,
			3345.22, 3385.63, 3382.11, 3342.97, 3308.29, 3246.86, 3223.17, 3199.31, 3151.48, 3187.46,
			3193.75, 3201.17, 3192.75, 3200.29, 3199.04, 3170.63, 3175.52, 3139.67, 3077.18, 3074.02,
		},
		lows: []float64{
			3193.97, 3176.25, 3215.03, 3213.48, 3222.70, 3203.57, 3213.61, 3168.74, 3170.19, 3188.44,
			3177.00, 3198.04, 3198.41, 3194.47, 3190.06, 3195.76, 3186.94, 3163.11, 3172.81, 3171.95,
			3209.47, 3237.65, 3252.35, 3227.30, 3273.75, 3266.59, 3262.24, 3247.98, 3228.10, 3240.80,
			3239.43, 3240.07, 3219.67, 3271.53, 3254.17, 3247.17, 3216.86, 3206.27, 3200.81, 3256.85,
			3303.11, 3269.18, 3251.36, 3296.02, 3287.21, 3348.33, 3360.90, 3352.21, 3344.31, 3341.07,
			3337.14, 3393.97, 3391.12, 3384.04, 3412.72, 3395.44, 3399.36, 3398.14, 3390.36, 3402.96,
			3417.82, 3415.31, 3416.99, 3433.93, 3448.20, 3472.79, 3466.98, 3542.13, 3520.61, 3496.36,
			3511.63, 3513.56, 3476.68, 3479.68, 3434.09, 3450.73, 3459.49, 3503.90, 3518.45, 3500.49,
			3438.68, 3438.15, 3453.69, 3414.92, 3390.14, 3464.68, 3440.39, 3406.96, 3382.02, 3372.58,
			3357.45, 3312.22, 3314.60, 3341.21, 3348.33, 3372.70, 3335.65, 3350.77, 3355.98, 3344.99,
			3350.71, 3350.15, 3322.49, 3261.37, 3261.59, 3190.23, 3177.04, 3150.78, 3160.63, 3201.94,
			3289.73, 3266.80, 3274.63, 3286.84, 3290.40, 3322.05, 3344.75, 3353.90, 3346.12, 3361.81,
			3354.29, 3330.44, 3309.99, 3335.35, 3335.39, 3328.48, 3320.79, 3282.75, 3263.24, 3265.56,
			3292.06, 3334.61, 3325.92, 3300.26, 3231.20, 3206.69, 3186.18, 3138.68, 3146.16, 3144.85,
			3139.34, 3145.66, 3189.63, 3126.88, 3131.07, 3144.74, 3096.17, 3017.32, 3031.33, 3017.49,
		},
		closes: []float64{
			3195.39, 3217.82, 3228.51, 3232.25, 3253.47, 3220.46, 3221.80, 3174.97, 3202.70, 3210.65,
			3228.89, 3209.29, 3230.61, 3198.23, 3201.89, 3213.09, 3192.94, 3208.88, 3182.59, 3227.84,
			3273.88, 3256.46, 3257.55, 3281.12, 3301.46, 3274.01, 3271.71, 3262.10, 3243.58, 3242.98,
			3278.16, 3245.02, 3284.83, 3273.04, 3256.14, 3302.49, 3224.03, 3206.30, 3261.60, 3306.02,
			3309.25, 3269.22, 3343.87, 3300.29, 3357.90, 3377.76, 3379.52, 3386.12, 3365.43, 3352.12,
			3400.66, 3416.23, 3392.31, 3416.05, 3425.84, 3415.70, 3419.75, 3402.21, 3410.03, 3430.75,
			3424.02, 3422.47, 3439.17, 3474.08, 3474.18, 3498.34, 3564.86, 3549.10, 3524.59, 3531.73,
			3525.83, 3536.14, 3483.26, 3507.41, 3451.21, 3467.28, 3515.76, 3526.63, 3528.28, 3511.41,
			3470.78, 3459.21, 3461.68, 3435.91, 3470.07, 3468.95, 3461.25, 3412.81, 3439.54, 3373.97,
			3385.62, 3317.13, 3350.07, 3395.27, 3377.59, 3382.87, 3358.72, 3360.00, 3357.66, 3359.71,
			3394.45, 3355.77, 3330.05, 3266.69, 3266.73, 3200.12, 3241.76, 3175.12, 3226.35, 3291.20,
			3300.86, 3285.50, 3295.93, 3302.87, 3324.27, 3382.84, 3361.30, 3356.38, 3377.07, 3370.88,
			3366.95, 3342.01, 3340.45, 3341.26, 3338.74, 3348.32, 3322.91, 3295.33, 3272.77, 3297.29,
			3334.64, 3374.53, 3334.33, 3303.52, 3233.45, 3214.55, 3195.06, 3146.62, 3148.82, 3184.55,
			3145.99, 3191.63, 3189.76, 3135.07, 3170.51, 3169.36, 3114.49, 3034.09, 3066.53, 3030.85,
		},
		directions: "UUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUUDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDUUUUUUUUUUUUUUDDDUUUDDDDDDDDDDDDDDDD",
	},
	{
		name:       "last candle decides the flip",
		period:     10,
		multiplier: 3.0,
		highs: []float64{
			50463.31, 50465.18, 49236.93, 49827.55, 49749.87, 50078.48, 50062.90, 50350.70, 49965.99, 49636.77,
			49435.85, 49453.11, 48363.10, 48001.28, 47751.59, 47357.37, 47388.75, 47671.30, 47646.45, 46808.58,
			45989.61, 45964.02, 45812.79, 44974.16, 45085.24, 46147.89, 46776.49, 46504.49, 46450.91, 46523.94,
			46763.28, 46341.14, 46317.22, 45619.42, 45705.27, 45751.40, 45674.17, 45484.56, 45190.23, 45659.73,
			46037.73, 46003.98, 45329.29, 45815.46, 46164.01, 46128.28, 46395.22, 46406.75, 46679.12, 46669.57,
			46258.40, 45606.34, 45971.35, 46040.59, 45651.70, 44731.71, 45190.47, 45154.06, 45209.99, 44450.87,
			44506.32, 43963.58, 44206.95, 44033.31, 43900.58, 43770.23, 44610.69, 44679.78, 44206.29, 44584.38,
			45894.77, 45865.66, 46323.61, 46756.54, 47877.71, 48924.87, 48751.56, 49489.73, 49451.45, 50495.41,
			50845.68, 50899.92, 50890.32, 51204.03, 51069.82, 50127.76, 49627.46, 49648.20, 49875.07, 50122.45,
			50242.70, 50513.22, 51194.68, 52016.77, 51807.97, 52261.43, 52577.90, 51228.59, 50698.62, 50773.37,
		},
		lows: []float64{
			49875.43, 48824.86, 48797.22, 48756.50, 49296.07, 49372.44, 49408.35, 49849.43, 48893.90, 48698.98,
			48378.93, 48166.67, 47427.96, 47472.27, 46767.43, 46781.07, 46865.88, 47184.68, 46451.36, 45858.59,
			45765.10, 45436.33, 44823.88, 44589.47, 44694.75, 45025.83, 45970.80, 46251.82, 46292.01, 46044.13,
			45619.10, 45319.65, 45476.34, 45109.91, 45098.32, 44778.21, 44867.81, 44576.98, 44541.57, 44810.31,
			45584.44, 45092.16, 44636.90, 44744.71, 45545.17, 45983.61, 45977.44, 46223.80, 46138.96, 46087.65,
			45442.41, 44871.00, 44826.05, 45425.04, 44626.64, 44347.91, 44367.35, 44787.64, 43757.07, 43676.92,
			43784.82, 43713.41, 43329.36, 43379.04, 43344.63, 43386.57, 43724.57, 43993.83, 43853.65, 43798.83,
			44261.28, 45686.80, 45732.70, 46074.04, 46632.53, 47746.60, 48313.40, 48683.30, 49041.02, 48962.47,
			50221.09, 50438.53, 49943.79, 50166.03, 49779.85, 49374.84, 49281.56, 49424.70, 49478.24, 49404.22,
			49829.17, 49819.81, 50203.63, 50857.64, 51533.41, 51532.15, 50536.13, 50216.30, 49966.71, 49806.90,
		},
		closes: []float64{
			50333.97, 49135.63, 48986.51, 49652.66, 49473.12, 49681.01, 49994.01, 49941.52, 49566.93, 48767.54,
			49135.97, 48214.41, 47750.70, 47726.79, 47092.44, 46902.90, 47250.16, 47607.00, 46780.83, 45873.99,
			45930.78, 45633.55, 44862.88, 44715.23, 45064.40, 46082.16, 46377.88, 46391.75, 46395.50, 46164.61,
			45680.32, 46294.87, 45594.71, 45114.42, 45464.26, 44868.66, 45383.77, 44714.47, 44950.02, 45643.66,
			45961.33, 45116.22, 44886.47, 45749.93, 45990.17, 46086.64, 46253.26, 46342.24, 46655.22, 46167.52,
			45449.05, 44952.56, 45847.93, 45567.32, 44700.88, 44622.58, 45059.49, 44969.76, 43794.84, 44274.72,
			43920.63, 43873.09, 43379.93, 43853.56, 43412.13, 43754.58, 44480.00, 44018.69, 43999.55, 44461.59,
			45754.47, 45796.89, 46289.83, 46669.30, 47872.96, 48620.17, 48702.17, 49435.16, 49264.97, 50351.14,
			50659.95, 50782.66, 50216.49, 51011.18, 50041.55, 49539.77, 49500.81, 49556.06, 49702.76, 49856.89,
			50061.90, 50378.30, 51026.38, 51800.09, 51591.76, 52200.02, 51133.61, 50224.71, 50507.00, 49848.38,
		},
		directions: "UUUUUUUUUDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDUUUUUUUUUUUUUUUUUUUUUUUUUUUUUU",
	},
}
